// taskctl is the terminal frontend for the taskboard API. Login stores the
// issued token in a session file under the home directory; every other
// command refuses to run without one, mirroring the route guard of the web
// UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"taskboard/internal/board"
	"taskboard/internal/client"
	"taskboard/internal/model"
	"taskboard/internal/service/task"
)

const defaultBaseURL = "http://localhost:5000"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "taskctl:", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	sessionPath, err := client.DefaultSessionPath()
	if err != nil {
		return err
	}
	session := client.NewSession(sessionPath)

	baseURL := os.Getenv("TASKBOARD_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	ctx := context.Background()

	switch command {
	case "register":
		return cmdRegister(ctx, baseURL, args)
	case "login":
		return cmdLogin(ctx, baseURL, session, args)
	case "logout":
		return session.Clear()
	}

	// Everything below is behind the route guard.
	token, err := session.Token()
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("not logged in; run `taskctl login` first")
	}
	c := client.New(baseURL, token)

	switch command {
	case "board":
		return cmdBoard(ctx, c, args)
	case "add":
		return cmdAdd(ctx, c, args)
	case "edit":
		return cmdEdit(ctx, c, args)
	case "done":
		return cmdProgress(ctx, c, args, true)
	case "undone":
		return cmdProgress(ctx, c, args, false)
	case "comment":
		return cmdComment(ctx, c, args)
	case "rm":
		return cmdRemove(ctx, c, args)
	case "assignees":
		return cmdAssignees(ctx, c, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdRegister(ctx context.Context, baseURL string, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	if err := client.New(baseURL, "").Register(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Printf("registered %s\n", *username)
	return nil
}

func cmdLogin(ctx context.Context, baseURL string, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	token, err := client.New(baseURL, "").Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	if err := session.SaveToken(token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", *username)
	return nil
}

func cmdBoard(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	taskType := fs.String("type", "", "filter by task type")
	query := fs.String("q", "", "search task and assignee names")
	fs.Parse(args)

	var tasks []model.Task
	var err error
	if *query != "" {
		tasks, err = c.SearchTasks(ctx, *query, *taskType)
	} else {
		tasks, err = c.Tasks(ctx, *taskType, false)
	}
	if err != nil {
		return err
	}

	today := time.Now()
	overdue, upcoming := board.Partition(tasks, today)

	if len(overdue) > 0 {
		fmt.Println("OVERDUE")
		printTasks(overdue, today)
		fmt.Println()
	}
	fmt.Println("UPCOMING")
	printTasks(upcoming, today)
	return nil
}

func printTasks(tasks []model.Task, today time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tDUE\t\tTYPE\tTASK\tASSIGNEES")
	for _, t := range tasks {
		marker := ""
		if days, err := board.DaysUntil(t.DueDate, today); err == nil {
			switch board.UrgencyFor(days) {
			case board.UrgencyOverdue:
				marker = "!!!"
			case board.UrgencyCritical:
				marker = "!!"
			case board.UrgencyWarning:
				marker = "!"
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.DueDate, marker, t.TaskType, t.TaskName, formatAssignees(t.Assignees))
	}
}

func formatAssignees(assignees []model.TaskAssignee) string {
	parts := make([]string, 0, len(assignees))
	for _, a := range assignees {
		mark := " "
		if a.Completed {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", mark, a.Name))
	}
	return strings.Join(parts, "  ")
}

func cmdAdd(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	in := taskInputFlags(fs)
	fs.Parse(args)

	t, err := c.CreateTask(ctx, *in)
	if err != nil {
		return err
	}
	fmt.Printf("created task %d\n", t.ID)
	return nil
}

func cmdEdit(ctx context.Context, c *client.Client, args []string) error {
	id, err := taskIDArg(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	in := taskInputFlags(fs)
	fs.Parse(args[1:])

	t, err := c.UpdateTask(ctx, id, *in)
	if err != nil {
		return err
	}
	fmt.Printf("updated task %d\n", t.ID)
	return nil
}

func cmdProgress(ctx context.Context, c *client.Client, args []string, completed bool) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: taskctl done|undone <task-id> <assignee>")
	}
	id, err := taskIDArg(args)
	if err != nil {
		return err
	}

	if _, err := c.SetAssigneeProgress(ctx, id, args[1], completed, nil); err != nil {
		return err
	}
	state := "not completed"
	if completed {
		state = "completed"
	}
	fmt.Printf("task %d: %s marked %s\n", id, args[1], state)
	return nil
}

func cmdComment(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ExitOnError)
	msg := fs.String("m", "", "comment text")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("usage: taskctl comment -m <text> <task-id> <assignee>")
	}
	id, err := taskIDArg(rest)
	if err != nil {
		return err
	}

	// The comment rides on the progress endpoint without changing the
	// completed flag, so fetch the current state first.
	tasks, err := c.Tasks(ctx, "", false)
	if err != nil {
		return err
	}
	completed := false
	for _, t := range tasks {
		if t.ID == id {
			if a := t.Assignee(rest[1]); a != nil {
				completed = a.Completed
			}
		}
	}

	if _, err := c.SetAssigneeProgress(ctx, id, rest[1], completed, msg); err != nil {
		return err
	}
	fmt.Printf("task %d: comment saved for %s\n", id, rest[1])
	return nil
}

func cmdRemove(ctx context.Context, c *client.Client, args []string) error {
	id, err := taskIDArg(args)
	if err != nil {
		return err
	}
	t, err := c.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("deleted task %d (%s)\n", t.ID, t.TaskName)
	return nil
}

func cmdAssignees(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		names, err := c.Assignees(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("assignees add", flag.ExitOnError)
		password := fs.String("p", "", "optional password for a login-capable account")
		fs.Parse(args[1:])
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: taskctl assignees add <name> [-p password]")
		}
		if err := c.AddAssignee(ctx, fs.Arg(0), *password); err != nil {
			return err
		}
		fmt.Printf("added %s\n", fs.Arg(0))
		return nil
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: taskctl assignees rm <name>")
		}
		if err := c.RemoveAssignee(ctx, args[1]); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown assignees subcommand %q", args[0])
	}
}

func taskInputFlags(fs *flag.FlagSet) *task.Input {
	in := &task.Input{}
	fs.StringVar(&in.TaskName, "name", "", "task name")
	fs.StringVar(&in.Assignees, "assignees", "", "comma-separated assignee names")
	fs.StringVar(&in.DueDate, "due", "", "due date (YYYY-MM-DD)")
	fs.StringVar(&in.TaskType, "type", "", "task type")
	return in
}

func taskIDArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("task id required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad task id %q", args[0])
	}
	return id, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: taskctl <command> [flags]

  register -u <name> -p <password>   create an account
  login -u <name> -p <password>      log in and store the session token
  logout                             drop the session token

  board [-type t] [-q text]          show overdue and upcoming tasks
  add -name -assignees -due -type    create a task
  edit <id> -name -assignees -due -type
  done <id> <assignee>               mark an assignee's part complete
  undone <id> <assignee>             mark it incomplete again
  comment -m <text> <id> <assignee>  save a comment
  rm <id>                            soft-delete a task
  assignees [add|rm]                 manage the assignee directory`)
}
