package main

import (
	"os"

	"sortdemo/src/cmd"
	"sortdemo/src/utils"
)

var logger = utils.GetLogger("sortdemo")

func main() {
	if err := cmd.Main(os.Args); err != nil {
		logger.Fatal(err)
	}
}
