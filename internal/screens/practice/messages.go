package practice

// persistDoneMsg is sent when answer persistence completes.
type persistDoneMsg struct {
	Err error
}
