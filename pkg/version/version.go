package version

var (
	// Git SHA Value will be set during build with
	// -ldflags "-X github.com/selectdb/observer_demo/pkg/version.GitTagSha=..."
	GitTagSha = "Git tag sha: Not provided, build with -ldflags to set it"
)

func GetVersion() string {
	return GitTagSha
}
