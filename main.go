/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/zweihuehner/le-mehaute-diagram/cmd"

func main() {
	cmd.Execute()
}
