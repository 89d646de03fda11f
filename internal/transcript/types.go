package transcript

// Record is one reconstructed command execution: the text the user typed at a
// prompt and everything the terminal printed before the next prompt appeared.
type Record struct {
	ID      string `json:"id"`
	Command string `json:"command"`
	Output  string `json:"output"`
}
