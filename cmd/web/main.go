package main

import "craftfolio/internal/app"

func main() {
	app.Run()
}
