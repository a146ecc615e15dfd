package main

import (
	"we.com/marlin/cmd/ctrl/cmd"
	"we.com/marlin/logger"
)

func main() {
	logger.InitLogs()
	cmd.Execute()
}
