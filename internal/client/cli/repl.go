package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Export(ctx context.Context) error
	Cetak(ctx context.Context) error
	Student(ctx context.Context) error
	AddStudent(ctx context.Context) error
	UploadExcel(ctx context.Context) error
	RegisterAdmin(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to a. The loop exits on scanner EOF or "exit"/"quit".
//
// Signed out, only login is available; the remaining commands assume a
// session and will surface a session error themselves if it is gone.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("kw %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, export, cetak, student, addstudent, uploadexcel, register, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "export":
			_ = a.Export(ctx)

		case "cetak":
			_ = a.Cetak(ctx)

		case "student":
			_ = a.Student(ctx)

		case "addstudent":
			_ = a.AddStudent(ctx)

		case "uploadexcel":
			_ = a.UploadExcel(ctx)

		case "register":
			_ = a.RegisterAdmin(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
