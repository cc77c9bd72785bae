package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"bouncer-lab/codec"
	"bouncer-lab/domain"
	"bouncer-lab/internal"
)

func main() {
	path := flag.String("file", "", "Path to a scrollback log (one JSON record per line)")
	flag.Parse()

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	if *path == "" {
		log.Fatal("missing -file")
	}
	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Error opening scrollback log: %v", err)
	}
	defer f.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Tag", "Timestamp", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	reader := codec.NewLineReader(f)
	var read, bad int
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep scanning so one bad record doesn't hide the rest.
			bad++
			logger.Error(err.Error())
			continue
		}
		read++
		if config.MaxRows > 0 && read > config.MaxRows {
			continue
		}
		table.Append([]string{
			fmt.Sprintf("%d", read),
			domain.Tag(line.Data),
			line.Time().UTC().Format(time.RFC3339),
			detail(line.Data),
		})
	}
	table.Render()

	summary := fmt.Sprintf("%d records, %d malformed", read, bad)
	if bad > 0 {
		fmt.Println(color.New(color.FgRed).Render(summary))
	} else {
		fmt.Println(color.New(color.FgGreen).Render(summary))
	}
}

func detail(d domain.LineData) string {
	switch v := d.(type) {
	case domain.Message:
		if code, ok := v.Kind.Code(); ok {
			return fmt.Sprintf("<%s> [%03d] %s", v.From, code, v.Msg)
		}
		return fmt.Sprintf("<%s> [%s] %s", v.From, v.Kind, v.Msg)
	case domain.Topic:
		if v.By != nil {
			return fmt.Sprintf("%s set topic to %q", *v.By, v.Topic)
		}
		return fmt.Sprintf("topic is %q", v.Topic)
	case domain.Join:
		return fmt.Sprintf("%s joined", v.User)
	case domain.Part:
		return fmt.Sprintf("%s left (%s)", v.User, v.Reason)
	case domain.Kick:
		return fmt.Sprintf("%s kicked %s (%s)", v.By.Nick, v.User, v.Reason)
	case domain.Quit:
		if v.Msg != nil {
			return fmt.Sprintf("%s quit (%s)", v.User, *v.Msg)
		}
		return fmt.Sprintf("%s quit", v.User)
	case domain.NickChange:
		return fmt.Sprintf("%s is now known as %s", v.User.Nick, v.New)
	default:
		return ""
	}
}
