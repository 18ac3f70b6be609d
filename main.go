package main

import (
	"dayboard/core/logger"
	"dayboard/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
