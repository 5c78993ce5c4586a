package main

import "dfb/windows"

func main() {
	windows.CreateMainWindow()
}
