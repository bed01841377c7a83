package utils

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"sync/atomic"
	"time"
)

// LogInterceptor is an io.Writer that prefixes every complete line
// with a sequence number and timestamp before forwarding it. The file
// log handler strips its own time attribute and relies on this prefix,
// which keeps line ordering unambiguous even when timestamps collide.
type LogInterceptor struct {
	target       io.Writer
	sequence     atomic.Uint64
	interceptBuf bytes.Buffer
}

func NewLogInterceptor(target io.Writer) *LogInterceptor {
	return &LogInterceptor{target: target}
}

// writeFormattedLine writes one line with its sequence number and
// timestamp prefix to the target writer.
func (i *LogInterceptor) writeFormattedLine(line []byte) (int, error) {
	prefix := slog.Uint64("line", i.sequence.Add(1)).String() + " " +
		slog.String("time", time.Now().Format(time.RFC3339)).String() + " "

	totalWritten := 0
	n, err := io.WriteString(i.target, prefix)
	totalWritten += n
	if err != nil {
		return totalWritten, err
	}

	n, err = i.target.Write(line)
	totalWritten += n
	if err != nil {
		return totalWritten, err
	}

	n, err = io.WriteString(i.target, "\n")
	totalWritten += n
	return totalWritten, err
}

// Write buffers the input and forwards complete lines, prefixed.
// Partial lines stay buffered until their newline arrives or Close
// flushes them.
func (i *LogInterceptor) Write(p []byte) (n int, err error) {
	if _, err := i.interceptBuf.Write(p); err != nil {
		return 0, err
	}

	totalWritten := 0
	scanner := bufio.NewScanner(&i.interceptBuf)
	scanner.Split(bufio.ScanLines) // handles both \n and \r\n
	for scanner.Scan() {
		n, err = i.writeFormattedLine(scanner.Bytes())
		totalWritten += n
		if err != nil {
			return totalWritten, err
		}
	}

	return totalWritten, nil
}

// Close flushes any buffered partial line to the target writer.
func (i *LogInterceptor) Close() error {
	if i.interceptBuf.Len() > 0 {
		remaining := bytes.TrimRight(i.interceptBuf.Bytes(), "\r\n")
		i.interceptBuf.Reset()
		_, err := i.writeFormattedLine(remaining)
		return err
	}
	return nil
}
