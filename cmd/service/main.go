// File: cmd/service/main.go
// @title        Project Board API
// @version      1.0
// @description  REST backend for users, authentication and projects
// @host         localhost:8080
// @BasePath     /api
package main

import "log"

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
