// Command listctl inspects list data sources and exercises selection over
// them.
package main

func main() {
	execute()
}
