package main

import "github.com/theirongolddev/wallet/cmd"

func main() {
	cmd.Execute()
}
