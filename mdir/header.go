package mdir

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/creativeprojects/mailwatch/lib"
	"github.com/creativeprojects/mailwatch/limitio"
	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/textproto"
)

const (
	senderField  = "From"
	senderPrefix = senderField + ": "
)

// Sender returns the decoded value of the first line starting with "From: " in the file.
// It returns false when there's no such line. Nothing after the header is read.
func (m *Maildir) Sender(ctx context.Context, filename string) (string, bool, error) {
	file, err := m.open(filename)
	if err != nil {
		return "", false, lib.NewScanError(lib.ErrFileOpen, filename, err)
	}
	defer file.Close()

	var source io.Reader = file
	if m.rateLimit > 0 {
		limited := limitio.NewReader(ctx, file)
		limited.SetRateLimit(m.rateLimit, m.burst)
		source = limited
	}
	return readSender(bufio.NewReader(source), filename)
}

func readSender(reader *bufio.Reader, filename string) (string, bool, error) {
	for {
		line, err := readLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, lib.NewScanError(lib.ErrLineRead, filename, err)
		}
		if strings.HasPrefix(line, senderPrefix) {
			field, err := readFolded(reader, line)
			if err != nil {
				return "", false, lib.NewScanError(lib.ErrLineRead, filename, err)
			}
			sender, err := decodeSender(field)
			if err != nil {
				return "", false, lib.NewScanError(lib.ErrHeaderParse, filename, err)
			}
			return sender, true, nil
		}
		if err != nil {
			// end of file
			return "", false, nil
		}
	}
}

// readLine returns the next line without its line ending.
// On the last line the content is returned along with io.EOF.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

// readFolded appends the continuation lines following the first line of a header field
func readFolded(reader *bufio.Reader, first string) (string, error) {
	field := first
	for {
		next, err := reader.Peek(1)
		if errors.Is(err, io.EOF) {
			return field, nil
		}
		if err != nil {
			return field, err
		}
		if next[0] != ' ' && next[0] != '\t' {
			return field, nil
		}
		line, err := readLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			return field, err
		}
		field += "\r\n" + line
	}
}

// decodeSender parses a single header field and decodes its encoded-words
func decodeSender(field string) (string, error) {
	fields, err := textproto.ReadHeader(bufio.NewReader(strings.NewReader(field + "\r\n\r\n")))
	if err != nil {
		return "", err
	}
	header := message.Header{Header: fields}
	return header.Text(senderField)
}
