package main

import "github.com/WhiteAbeLincoln/sf-describe/cmd/describectl/cmd"

func main() {
	cmd.Execute()
}
