// Package export provides the orchestration logic for turning a player's
// chess.com archive into a CSV file.
//
// # Exporter
//
// The Exporter runs the whole pipeline sequentially:
//
//  1. Fetch the player profile and take the join month
//  2. Walk every month from the join month up to the current month
//  3. Split each month's PGN bundle into records and parse them
//  4. Write one CSV row per game, in fetch order
//
// # Basic Usage
//
//	exporter, err := export.NewExporter(settings, func(event export.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := exporter.Run(ctx, "hikaru")
//	var recErr *export.RecordError
//	if errors.As(err, &recErr) {
//	    fmt.Println(recErr.Raw)
//	}
//
// # Malformed Records
//
// By default the first record missing a required tag stops the run with a
// *RecordError; rows already written stay in the file. With
// settings.SkipMalformed the record is reported and counted instead.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Month   model.Month
//	    Done    int // months processed so far
//	    Total   int // months in the range
//	}
package export
