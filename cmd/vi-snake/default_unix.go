//go:build unix

package main

const defaultBackend = "ansi"
