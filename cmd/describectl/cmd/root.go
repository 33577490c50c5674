package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/WhiteAbeLincoln/sf-describe/minioconn"
)

var rootCmd = &cobra.Command{
	Use:   "describectl",
	Short: "Import, export, and fetch describe metadata documents",
	Long: `describectl moves describe metadata documents — JSON descriptions of
remote data-object schemas — between a local directory tree and a remote
object store.

Remote connection settings come from the environment (a .env file is
loaded if present):

  DESCRIBE_S3_ENDPOINT    store endpoint, e.g. localhost:9000
  DESCRIBE_S3_REGION      region (default us-east-1)
  DESCRIBE_S3_ACCESS_KEY  access key
  DESCRIBE_S3_SECRET_KEY  secret key
  DESCRIBE_S3_BUCKET      bucket (default describe-metadata)
  DESCRIBE_S3_PREFIX      optional key prefix
  DESCRIBE_S3_USE_SSL     "true" to use TLS`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect builds the remote connection from the environment.
func connect() (*minioconn.Conn, error) {
	_ = godotenv.Load()

	return minioconn.New(minioconn.Config{
		Endpoint:  os.Getenv("DESCRIBE_S3_ENDPOINT"),
		Region:    os.Getenv("DESCRIBE_S3_REGION"),
		AccessKey: os.Getenv("DESCRIBE_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("DESCRIBE_S3_SECRET_KEY"),
		Bucket:    firstNonEmpty(os.Getenv("DESCRIBE_S3_BUCKET"), "describe-metadata"),
		Prefix:    os.Getenv("DESCRIBE_S3_PREFIX"),
		UseSSL:    strings.EqualFold(strings.TrimSpace(os.Getenv("DESCRIBE_S3_USE_SSL")), "true"),
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
