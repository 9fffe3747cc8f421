package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Workspaces(ctx context.Context) error
	MkWorkspace(ctx context.Context) error
	RmWorkspace(ctx context.Context, id string) error
	Search(ctx context.Context, query string) error
	Import(ctx context.Context, n, workspace string) error
	Docs(ctx context.Context) error
	MkDoc(ctx context.Context) error
	Analyses(ctx context.Context) error
	Stats(ctx context.Context) error
	Home(ctx context.Context) error
	Workspace(ctx context.Context, id string) error
	RmPaper(ctx context.Context, paper, workspace string) error
	Papers(ctx context.Context) error
	Uploads(ctx context.Context) error
	Analysis(ctx context.Context, id string) error
	RmAnalysis(ctx context.Context, id string) error
	Generate(ctx context.Context, kind string, paperIDs []string) error
	EditDoc(ctx context.Context, id string) error
	RmDoc(ctx context.Context, id string) error
	Star(ctx context.Context, id string) error
	flush()
}

const (
	helpLoggedOut = "Available commands: home, register, login, whoami, stats, exit"
	helpLoggedIn  = "Available commands: home, dashboard, workspaces, workspace <id>, mkworkspace, rmworkspace <id>, " +
		"rmpaper <paper-id> <workspace-id>, search <query>, import <n> <workspace-id>, papers, uploads, " +
		"docs, mkdoc, editdoc <id>, rmdoc <id>, star <id>, analyses, analysis <id>, rmanalysis <id>, " +
		"generate <summary|insights|literature_review> <paper-id>..., whoami, stats, logout, exit"
)

// byID maps the commands taking a single id argument to their handler.
var byID = map[string]func(execIface, context.Context, string) error{
	"rmworkspace": execIface.RmWorkspace,
	"workspace":   execIface.Workspace,
	"analysis":    execIface.Analysis,
	"rmanalysis":  execIface.RmAnalysis,
	"editdoc":     execIface.EditDoc,
	"rmdoc":       execIface.RmDoc,
	"star":        execIface.Star,
}

// runREPL reads one command per line from in and dispatches it to a.
// Commands that prompt read from the same reader. The loop exits on EOF or
// on "exit" / "quit".
//
// Errors returned by command handlers are not printed here: handlers queue
// their own notices, which are flushed after every command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hub %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "dashboard":
			_ = a.Dashboard(ctx)
		case "workspaces", "ws":
			_ = a.Workspaces(ctx)
		case "mkworkspace":
			_ = a.MkWorkspace(ctx)

		case "rmworkspace", "workspace", "analysis", "rmanalysis", "editdoc", "rmdoc", "star":
			if len(args) != 1 {
				printlnFn("Usage: " + cmd + " <id>")
				continue
			}
			_ = byID[cmd](a, ctx, args[0])

		case "rmpaper":
			if len(args) != 2 {
				printlnFn("Usage: rmpaper <paper-id> <workspace-id>")
				continue
			}
			_ = a.RmPaper(ctx, args[0], args[1])

		case "generate":
			if len(args) < 1 {
				printlnFn("Usage: generate <summary|insights|literature_review> <paper-id>...")
				continue
			}
			_ = a.Generate(ctx, args[0], args[1:])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "import":
			if len(args) != 2 {
				printlnFn("Usage: import <n> <workspace-id>")
				continue
			}
			_ = a.Import(ctx, args[0], args[1])

		case "docs":
			_ = a.Docs(ctx)
		case "mkdoc":
			_ = a.MkDoc(ctx)
		case "analyses":
			_ = a.Analyses(ctx)
		case "papers":
			_ = a.Papers(ctx)
		case "uploads":
			_ = a.Uploads(ctx)
		case "home":
			_ = a.Home(ctx)
		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.flush()
	}
}
