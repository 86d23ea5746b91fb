package main

import "max.ks1230/grocery-bot/internal/pricectl"

func main() {
	pricectl.Execute()
}
