// Command patientdoc records, lists, edits and deletes patients kept in a
// CSV file, through a browser UI or from the command line.
package main

func main() {
	Execute()
}
