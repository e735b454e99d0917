// AngelaMos | 2026
// main.go

package main

import "github.com/carterperez-dev/taskhabit/cmd/habitctl/root"

func main() {
	root.Execute()
}
