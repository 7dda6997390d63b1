package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/cryptexhq/cryptex/cmd"
	"github.com/cryptexhq/cryptex/internal/pwgen"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		runInit(os.Args[2:])
	case "ls":
		runLs(os.Args[2:])
	case "show":
		runShow(os.Args[2:])
	case "add":
		runAdd(os.Args[2:])
	case "mkdir":
		runMkdir(os.Args[2:])
	case "rm":
		runRm(os.Args[2:])
	case "mv":
		runMv(os.Args[2:])
	case "edit":
		runEdit(os.Args[2:])
	case "gen":
		runGen(os.Args[2:])
	case "passwd":
		runPasswd(os.Args[2:])
	case "status":
		runStatus(os.Args[2:])
	case "keyring":
		runKeyring(os.Args[2:])
	case "completion":
		runCompletion(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// newFlagSet creates a command flag set carrying the shared --store flag.
func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	storeFile := fs.String("store", cmd.DefaultStoreFile(), "Path to the store file")
	return fs, storeFile
}

func parse(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func requireArgs(fs *flag.FlagSet, n int, usage string) {
	if fs.NArg() != n {
		fmt.Fprintf(os.Stderr, "Usage: cryptex %s\n", usage)
		os.Exit(1)
	}
}

func runInit(args []string) {
	fs, storeFile := newFlagSet("init")
	parse(fs, args)
	cmd.Init(*storeFile)
}

func runLs(args []string) {
	fs, storeFile := newFlagSet("ls")
	parse(fs, args)
	path := "/"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	cmd.List(*storeFile, path)
}

func runShow(args []string) {
	fs, storeFile := newFlagSet("show")
	showPassword := fs.Bool("password", false, "Print the password instead of masking it")
	parse(fs, args)
	requireArgs(fs, 1, "show [--password] <path>")
	cmd.Show(*storeFile, fs.Arg(0), *showPassword)
}

func runAdd(args []string) {
	fs, storeFile := newFlagSet("add")
	username := fs.StringP("username", "u", "", "Username for the entry")
	password := fs.StringP("password", "p", "", "Password for the entry")
	url := fs.String("url", "", "URL for the entry")
	generate := fs.BoolP("generate", "g", false, "Generate a random password")
	length := fs.Int("length", 20, "Generated password length")
	noSymbols := fs.Bool("no-symbols", false, "Generate without symbol characters")
	parse(fs, args)
	requireArgs(fs, 2, "add [flags] <path> <name>")

	genOpts := pwgen.DefaultOptions()
	genOpts.Length = *length
	genOpts.Symbols = !*noSymbols

	cmd.Add(*storeFile, fs.Arg(0), fs.Arg(1), cmd.AddOptions{
		Username: *username,
		Password: *password,
		URL:      *url,
		Generate: *generate,
		GenOpts:  genOpts,
	})
}

func runMkdir(args []string) {
	fs, storeFile := newFlagSet("mkdir")
	parse(fs, args)
	requireArgs(fs, 1, "mkdir <path>")
	cmd.Mkdir(*storeFile, fs.Arg(0))
}

func runRm(args []string) {
	fs, storeFile := newFlagSet("rm")
	asContainer := fs.BoolP("container", "c", false, "Remove a container (and its whole subtree)")
	parse(fs, args)
	requireArgs(fs, 1, "rm [--container] <path>")
	cmd.Remove(*storeFile, fs.Arg(0), *asContainer)
}

func runMv(args []string) {
	fs, storeFile := newFlagSet("mv")
	asContainer := fs.BoolP("container", "c", false, "Rename a container")
	parse(fs, args)
	requireArgs(fs, 2, "mv [--container] <path> <new-name>")
	cmd.Move(*storeFile, fs.Arg(0), fs.Arg(1), *asContainer)
}

func runEdit(args []string) {
	fs, storeFile := newFlagSet("edit")
	name := fs.String("name", "", "New name for the entry")
	username := fs.StringP("username", "u", "", "New username (empty clears)")
	password := fs.StringP("password", "p", "", "New password (empty clears)")
	url := fs.String("url", "", "New URL (empty clears)")
	parse(fs, args)
	requireArgs(fs, 1, "edit [flags] <path>")

	// Only flags the user actually passed are applied; an untouched flag
	// must not clear the field
	var opts cmd.EditOptions
	if fs.Changed("name") {
		opts.Name = name
	}
	if fs.Changed("username") {
		opts.Username = username
	}
	if fs.Changed("password") {
		opts.Password = password
	}
	if fs.Changed("url") {
		opts.URL = url
	}
	cmd.Edit(*storeFile, fs.Arg(0), opts)
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	length := fs.IntP("length", "l", 20, "Password length")
	noUpper := fs.Bool("no-upper", false, "Exclude uppercase letters")
	noLower := fs.Bool("no-lower", false, "Exclude lowercase letters")
	noDigits := fs.Bool("no-digits", false, "Exclude digits")
	noSymbols := fs.Bool("no-symbols", false, "Exclude symbols")
	exclude := fs.String("exclude", "", "Characters to exclude")
	parse(fs, args)

	cmd.Gen(pwgen.Options{
		Length:  *length,
		Upper:   !*noUpper,
		Lower:   !*noLower,
		Digits:  !*noDigits,
		Symbols: !*noSymbols,
		Exclude: *exclude,
	})
}

func runPasswd(args []string) {
	fs, storeFile := newFlagSet("passwd")
	parse(fs, args)
	cmd.Passwd(*storeFile)
}

func runStatus(args []string) {
	fs, storeFile := newFlagSet("status")
	parse(fs, args)
	cmd.Status(*storeFile)
}

func runKeyring(args []string) {
	fs, storeFile := newFlagSet("keyring")
	parse(fs, args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: cryptex keyring <save|rm|status>")
		os.Exit(1)
	}
	switch fs.Arg(0) {
	case "save":
		cmd.KeyringSave(*storeFile)
	case "rm":
		cmd.KeyringDelete(*storeFile)
	case "status":
		cmd.KeyringStatus(*storeFile)
	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring subcommand: %s\n", fs.Arg(0))
		os.Exit(1)
	}
}

func runCompletion(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: cryptex completion <bash|zsh|fish>")
		os.Exit(1)
	}
	cmd.Completion(args[0])
}

func printUsage() {
	fmt.Println("cryptex - Hierarchical encrypted credential store")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cryptex <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init        Create a new encrypted store")
	fmt.Println("  ls          List containers and entries at a path")
	fmt.Println("  show        Show a single entry")
	fmt.Println("  add         Add an entry to a container")
	fmt.Println("  mkdir       Create a container")
	fmt.Println("  rm          Remove an entry or container")
	fmt.Println("  mv          Rename an entry or container in place")
	fmt.Println("  edit        Update an entry's fields or name")
	fmt.Println("  gen         Generate a random password")
	fmt.Println("  passwd      Change the store password")
	fmt.Println("  status      Show store parameters (no password needed)")
	fmt.Println("  keyring     Manage the password in the OS keyring")
	fmt.Println("  completion  Generate shell completions")
	fmt.Println("  help        Show this help")
	fmt.Println()
	fmt.Println("The store file defaults to ~/.cryptex; override with --store or")
	fmt.Println("the CRYPTEX_STORE environment variable. The password is read from")
	fmt.Println("CRYPTEX_PASSWORD, the OS keyring, or an interactive prompt.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  cryptex init")
	fmt.Println("  cryptex mkdir /Email")
	fmt.Println("  cryptex add /Email Gmail -u bob --generate")
	fmt.Println("  cryptex show /Email/Gmail --password")
	fmt.Println("  cryptex mv /Email/Gmail Mail")
}
