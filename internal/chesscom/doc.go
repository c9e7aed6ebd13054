// Package chesscom provides access to the chess.com public API and
// parses the PGN bundles it returns.
//
// The package handles two main use cases:
//
//  1. Fetching a player's profile and monthly game archives
//  2. Parsing PGN game records into model.Game values
//
// # Fetching
//
//	api := chesscom.NewAPI(client, "https://api.chess.com")
//	profile, err := api.FetchProfile(ctx, "hikaru")
//	bundle, ok, err := api.FetchMonth(ctx, "hikaru", model.Month{Year: 2020, Month: 3})
//
// # Parsing
//
// A monthly PGN bundle holds games separated by two blank lines:
//
//	for _, raw := range chesscom.SplitBundle(bundle) {
//	    game, err := chesscom.ParseGame(raw)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if game.IsEmpty() {
//	        continue
//	    }
//	    fmt.Println(game.Name())
//	}
//
// # PGN Format
//
// Each record carries tag pairs like [White "hikaru"] followed by the move
// text on its last line. chess.com numbers Black's half-moves ("1... c5");
// ParseGame removes those markers so the move text reads "1. e4  c5".
package chesscom
