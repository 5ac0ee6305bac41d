// Command tst loads key sets into a ternary search trie and reports on the
// resulting structure.
package main

func main() {
	Execute()
}
