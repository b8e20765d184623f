package repoargs

type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	CardRepoName     RepositoryName = "card"
	TransferRepoName RepositoryName = "transfer"
)
