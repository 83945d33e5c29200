package mailbox

// Entry is the sender found in one mail file.
type Entry struct {
	// The file the sender was extracted from.
	Filename string
	// The decoded value of the "From:" header.
	Sender string
}

// ScanResult holds the entries of one scan, in directory order.
// Directory order is decided by the filesystem and can change between scans.
type ScanResult struct {
	Entries []Entry
}

func (r ScanResult) Count() int {
	return len(r.Entries)
}

func (r ScanResult) Senders() []string {
	senders := make([]string, len(r.Entries))
	for i, entry := range r.Entries {
		senders[i] = entry.Sender
	}
	return senders
}
