package main

import "fmt"

type invalidArgErr struct {
	flags, desc string
}

func (i invalidArgErr) Error() string {
	return fmt.Sprintf("invalid flags %s  %s", i.flags, i.desc)
}
