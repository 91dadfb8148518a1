/*
Package env wraps the process environment behind a Store interface.

Var binds one variable name to a default value:

	dataDir := env.NewVar("DATA_DIR", "/var/lib/froy")
	dataDir.Set("/tmp/froy")
	dir := dataDir.Get()
	dataDir.Clear()

None of Var's methods return errors. Rejected writes and store failures are
reported through zerolog. Tests swap the process environment for a MapStore
or a mocks.MockStore with WithStore.

The environment is process-global and Var does no locking around it.
*/
package env
