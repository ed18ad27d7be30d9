// Command mealplan computes nutrition targets and catalog meal plans offline.
package main

func main() {
	Execute()
}
