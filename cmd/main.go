package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tferdous17/baobab/tree"
	"github.com/tferdous17/baobab/utils"
)

func main() {
	intro := "\n▗▄▄▖  ▗▄▖  ▗▄▖ ▗▄▄▖  ▗▄▖ ▗▄▄▖\n▐▌ ▐▌▐▌ ▐▌▐▌ ▐▌▐▌ ▐▌▐▌ ▐▌▐▌ ▐▌\n▐▛▀▚▖▐▛▀▜▌▐▌ ▐▌▐▛▀▚▖▐▛▀▜▌▐▛▀▚▖\n▐▙▄▞▘▐▌ ▐▌▝▚▄▞▘▐▙▄▞▘▐▌ ▐▌▐▙▄▞▘\n"

	commands := "Commands:\n" +
		"\t- add    <key>        : insert an integer key\n" +
		"\t- del    <key>        : delete a key\n" +
		"\t- get    <key>        : check if a key is present\n" +
		"\t- min / max           : smallest / largest key\n" +
		"\t- range  <lo> <hi>    : keys inside [lo, hi]\n" +
		"\t- list                : all keys in sorted order\n" +
		"\t- print               : draw the tree shape\n" +
		"\t- stats               : height, size, balance breakdown\n" +
		"\t- clear               : drop every key\n" +
		"\t- ctrl+c              : exit\n" +
		"\t- help                : show this message"

	t := tree.NewWithIntComparator()

	fmt.Println(intro)
	fmt.Println(commands)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\nEnter command: ")
		scanner.Scan()
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "add":
			key, ok := parseKey(args, 2)
			if !ok {
				continue
			}
			if t.Insert(key) {
				utils.LogGREEN("inserted %d", key)
			} else {
				utils.LogRED("%d is already in the tree", key)
			}
		case "del":
			key, ok := parseKey(args, 2)
			if !ok {
				continue
			}
			if t.Delete(key) {
				utils.LogGREEN("deleted %d", key)
			} else {
				utils.LogRED("%d is not in the tree", key)
			}
		case "get":
			key, ok := parseKey(args, 2)
			if !ok {
				continue
			}
			if t.Contains(key) {
				utils.LogGREEN("%d is present", key)
			} else {
				utils.LogRED("%d is not in the tree", key)
			}
		case "min":
			if key, ok := t.Min(); ok {
				fmt.Println(key)
			} else {
				utils.LogRED("tree is empty")
			}
		case "max":
			if key, ok := t.Max(); ok {
				fmt.Println(key)
			} else {
				utils.LogRED("tree is empty")
			}
		case "range":
			if len(args) != 3 {
				utils.LogRED("usage: range <lo> <hi>")
				continue
			}
			lo, err1 := strconv.Atoi(args[1])
			hi, err2 := strconv.Atoi(args[2])
			if err1 != nil || err2 != nil {
				utils.LogRED("keys must be integers")
				continue
			}
			fmt.Println(t.RangeQuery(lo, hi))
		case "list":
			fmt.Println(t.InOrder())
		case "print":
			t.Print()
		case "stats":
			stats := t.BalanceStats()
			utils.LogCYAN("size=%d height=%d rotations=%d fingerprint=%016x", t.Size(), t.Height(), t.RotationCount(), t.Fingerprint())
			utils.LogCYAN("balance: %d perfect, %d left-heavy, %d right-heavy", stats.PerfectlyBalanced, stats.LeftHeavy, stats.RightHeavy)
		case "clear":
			t.Clear()
			utils.LogGREEN("tree cleared")
		case "help":
			fmt.Println("\n" + commands)
		default:
			utils.LogRED("unknown command %q, try help", args[0])
		}
	}
}

func parseKey(args []string, want int) (int, bool) {
	if len(args) != want {
		utils.LogRED("usage: %s <key>", args[0])
		return 0, false
	}
	key, err := strconv.Atoi(args[1])
	if err != nil {
		utils.LogRED("key must be an integer, got %q", args[1])
		return 0, false
	}
	return key, true
}
