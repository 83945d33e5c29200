package lib

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyz " +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 " +
	",./;'\\ \" []{}<>?:|!@£$%^&*()_+-= " +
	"\r\n\r\n\r\n "

const template = "Return-Path: <%s>\r\n" +
	"From: %s\r\n" +
	"To: %s\r\n" +
	"Subject: A little message, just for you\r\n" +
	"Date: Wed, 11 May 2016 14:31:59 +0000\r\n" +
	"Message-ID: <%d@localhost/>\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n%s"

const headerlessTemplate = "To: %s\r\n" +
	"Subject: Nobody sent this\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n%s"

var seededRand *rand.Rand = rand.New(
	rand.NewSource(time.Now().UnixMilli()))

func stringWithCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	// a body line starting with "From: " would be picked up as the sender
	body := strings.ReplaceAll("\n"+string(b), "\nFrom: ", "\nfrom: ")
	return body[1:]
}

// GenerateEmail returns a message with a random body of up to maxBody bytes.
// The from value is written as is, so it can be an encoded-word.
func GenerateEmail(from, to string, maxBody int) []byte {
	length := 0
	if maxBody > 0 {
		length = seededRand.Intn(maxBody)
	}
	msg := fmt.Sprintf(template, to, from, to, seededRand.Uint32(), stringWithCharset(length, charset))
	return []byte(msg)
}

// GenerateEmailWithoutSender returns a message with no "From: " line in it.
func GenerateEmailWithoutSender(to string, maxBody int) []byte {
	length := 0
	if maxBody > 0 {
		length = seededRand.Intn(maxBody)
	}
	msg := fmt.Sprintf(headerlessTemplate, to, stringWithCharset(length, charset))
	return []byte(msg)
}
