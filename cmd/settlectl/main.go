package main

import (
	"os"

	"github.com/MrJamesThe3rd/settle/cmd/settlectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
