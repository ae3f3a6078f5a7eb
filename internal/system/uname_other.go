//go:build !unix

package system

func unameRelease() string { return "" }
