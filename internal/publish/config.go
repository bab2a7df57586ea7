package publish

type Strategy string

const (
	// StrategyIncremental chains blob, tree, commit and ref update per file.
	StrategyIncremental Strategy = "incremental"
	// StrategyContents issues one contents API PUT per file.
	StrategyContents Strategy = "contents"
)

type Config struct {
	Strategy              Strategy
	DeleteBranchOnFailure bool
	BranchPrefix          string
}
