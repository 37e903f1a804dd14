package main

import "github.com/pders01/mealplan/cmd"

func main() {
	cmd.Execute()
}
