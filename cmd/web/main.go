package main

import "taskbridge_backend/internal/app"

func main() {
	app.Run()
}
