package train

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
)

// CSVLogger writes one "epoch,loss,time_seconds" record per epoch.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool
	Log      logger.Logger

	file   *os.File
	writer *csv.Writer
	start  time.Time
}

// NewCSVLogger creates a new CSVLogger.
func NewCSVLogger(filename string, append bool, log logger.Logger) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
		Log:      log,
	}
}

func (c *CSVLogger) OnTrainBegin(n *net.Network) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0o644)
	if err != nil {
		logger.Printf(c.Log, logger.Error, "CSVLogger: failed to open file %s: %v", c.Filename, err)
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// Header only for a fresh file.
	info, err := file.Stat()
	if err == nil && (info.Size() == 0 || !c.Append) {
		c.write([]string{"epoch", "loss", "time_seconds"})
	}
}

func (c *CSVLogger) OnEpochEnd(epoch int, loss float64, n *net.Network) {
	if c.writer == nil {
		return
	}
	c.write([]string{
		strconv.Itoa(epoch),
		strconv.FormatFloat(loss, 'f', 6, 64),
		fmt.Sprintf("%.2f", time.Since(c.start).Seconds()),
	})
}

func (c *CSVLogger) OnTrainEnd(n *net.Network) {
	if c.file == nil {
		return
	}
	c.writer.Flush()
	if err := c.file.Close(); err != nil {
		logger.Printf(c.Log, logger.Error, "CSVLogger: failed to close file %s: %v", c.Filename, err)
	}
	c.file = nil
	c.writer = nil
}

func (c *CSVLogger) write(record []string) {
	if err := c.writer.Write(record); err != nil {
		logger.Printf(c.Log, logger.Error, "CSVLogger: failed to write record: %v", err)
	}
	c.writer.Flush()
}
