package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	RecordMood(ctx context.Context) error
	ListMoods(ctx context.Context, args []string) error
	TodayMood(ctx context.Context) error
	SearchMoods(ctx context.Context, args []string) error
	MoodStats(ctx context.Context, args []string) error

	ListExercises(ctx context.Context) error
	CompleteExercise(ctx context.Context, args []string) error

	NewChat(ctx context.Context, args []string) error
	SendMessage(ctx context.Context, args []string) error
	ListSessions(ctx context.Context, args []string) error
	ListMessages(ctx context.Context, args []string) error

	Sync(ctx context.Context) error
	Status(ctx context.Context) error
	SetOnline(ctx context.Context, online bool) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = `Available commands:
  mood                       record a mood
  moods [n]                  last n moods (default 10)
  today                      today's latest mood
  search <text>              search moods by label, note or tag
  stats [days]               mood statistics (default 7 days)
  exercises                  exercise catalog with your progress
  complete [exerciseId]      record an exercise completion
  chat [coach|event|companion]  start a chat session
  say <sessionId> [text]     send a message
  sessions [type]            list chat sessions
  messages <sessionId>       list messages of a session
  sync                       synchronize now
  status                     pending and failed counters
  online | offline           force connectivity
  logout, exit`
)

// readLine returns the next input line without the trailing newline. ok is
// false once input is exhausted.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// runREPL starts a simple read–eval–print loop for the WellSync CLI.
//
// It reads a line from r, parses the first token as the command and the rest
// as its arguments, and dispatches to methods on 'a'. The loop exits on EOF
// or when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed and otherwise ignored so a
// failing command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ws %s> ", statusFn()))
		line, ok := readLine(r)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		printlnFn("Please log in first (type 'help' for commands)")
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "mood":
		return a.RecordMood(ctx)
	case "moods":
		return a.ListMoods(ctx, args)
	case "today":
		return a.TodayMood(ctx)
	case "search":
		return a.SearchMoods(ctx, args)
	case "stats":
		return a.MoodStats(ctx, args)
	case "exercises":
		return a.ListExercises(ctx)
	case "complete":
		return a.CompleteExercise(ctx, args)
	case "chat":
		return a.NewChat(ctx, args)
	case "say":
		return a.SendMessage(ctx, args)
	case "sessions":
		return a.ListSessions(ctx, args)
	case "messages":
		return a.ListMessages(ctx, args)
	case "sync":
		return a.Sync(ctx)
	case "status":
		return a.Status(ctx)
	case "online":
		return a.SetOnline(ctx, true)
	case "offline":
		return a.SetOnline(ctx, false)
	default:
		printlnFn("Unknown command:", cmd)
	}
	return nil
}
