package cmd

import (
	"fmt"
	"os"
)

// Completion outputs shell completion scripts.
func Completion(shell string) {
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported: bash, zsh, fish\n", shell)
		os.Exit(1)
	}
}

const bashCompletion = `_cryptex() {
    local cur prev words cword
    _init_completion || return

    local commands="init ls show add mkdir rm mv edit gen passwd status keyring help completion"

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
        return
    fi

    local cmd="${words[1]}"
    case "$cmd" in
        show)
            COMPREPLY=($(compgen -W "--password" -- "$cur"))
            ;;
        add)
            COMPREPLY=($(compgen -W "--username --password --url --generate --length --no-symbols" -- "$cur"))
            ;;
        rm|mv)
            COMPREPLY=($(compgen -W "--container" -- "$cur"))
            ;;
        edit)
            COMPREPLY=($(compgen -W "--name --username --password --url" -- "$cur"))
            ;;
        gen)
            COMPREPLY=($(compgen -W "--length --no-upper --no-lower --no-digits --no-symbols --exclude" -- "$cur"))
            ;;
        keyring)
            COMPREPLY=($(compgen -W "save rm status" -- "$cur"))
            ;;
        help)
            COMPREPLY=($(compgen -W "$commands" -- "$cur"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            ;;
    esac
}

complete -F _cryptex cryptex
`

const zshCompletion = `#compdef cryptex

_cryptex() {
    local -a commands
    commands=(
        'init:Create a new encrypted store'
        'ls:List containers and entries at a path'
        'show:Show a single entry'
        'add:Add an entry'
        'mkdir:Create a container'
        'rm:Remove an entry or container'
        'mv:Rename an entry or container'
        'edit:Update an entry in place'
        'gen:Generate a random password'
        'passwd:Change the store password'
        'status:Show store parameters'
        'keyring:Manage password in OS keyring'
        'help:Show help for a command'
        'completion:Generate shell completions'
    )

    _arguments -C \
        '1: :->command' \
        '*: :->args'

    case "$state" in
        command)
            _describe -t commands 'cryptex commands' commands
            ;;
        args)
            case "${words[2]}" in
                keyring)
                    _values 'subcommand' save rm status
                    ;;
                help)
                    _describe -t commands 'cryptex commands' commands
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_cryptex "$@"
`

const fishCompletion = `# cryptex fish completions

set -l commands init ls show add mkdir rm mv edit gen passwd status keyring help completion

complete -c cryptex -f

complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a init -d 'Create a new encrypted store'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a ls -d 'List containers and entries'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a show -d 'Show a single entry'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a add -d 'Add an entry'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a mkdir -d 'Create a container'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a rm -d 'Remove an entry or container'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a mv -d 'Rename an entry or container'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a edit -d 'Update an entry'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a gen -d 'Generate a random password'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a passwd -d 'Change the store password'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a status -d 'Show store parameters'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a keyring -d 'Manage password in OS keyring'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a help -d 'Show help'
complete -c cryptex -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate completions'

complete -c cryptex -n "__fish_seen_subcommand_from keyring" -a "save rm status"
complete -c cryptex -n "__fish_seen_subcommand_from help" -a "$commands"
complete -c cryptex -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`
