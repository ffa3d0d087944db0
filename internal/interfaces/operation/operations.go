// Package operation
package operation

type DatabaseOperations struct {
	launchOperation LaunchOperationInterface
}

func NewDatabaseOperations(launchOperation LaunchOperationInterface) *DatabaseOperations {
	return &DatabaseOperations{
		launchOperation: launchOperation,
	}
}

func (db *DatabaseOperations) LaunchOperation() LaunchOperationInterface {
	return db.launchOperation
}
