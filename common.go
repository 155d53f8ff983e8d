package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

func enew(text string) error {
	return errors.New(text)
}

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
