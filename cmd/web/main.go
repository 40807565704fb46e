package main

import "aurum_backend/internal/app"

func main() {
	app.Run()
}
