package domain

// PartitionSolver solves one partition, identified by the index of its second stop.
type PartitionSolver interface {
	Solve(index int) PartitionResult
}

// ResultStore collects one result per partition.
type ResultStore interface {
	Publish(result PartitionResult) error
	Best() (PartitionResult, bool)
	Results() []PartitionResult
}

// PartitionTask задача обработки одного второго пункта
type PartitionTask struct {
	Wave  int
	Index int
}
