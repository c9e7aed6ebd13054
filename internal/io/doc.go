// Package ioutils provides file system and CSV utilities for chess-profile.
//
// This package contains functions for:
//   - Writing the fixed-layout game CSV
//   - Reading an exported game CSV back
//   - Computing the output path from a username
//   - Filename sanitization and directory creation
//
// # Writing
//
//	f, err := ioutils.CreateGameFile("hikaru_games.csv")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	err = f.Write(game) // strips {...} annotations from the moves
//
// # Reading
//
//	games, err := ioutils.ReadGames(r)
//
// # Layout
//
// The header is fixed at 20 columns to match a downstream spreadsheet
// template. The "_" columns are always written empty.
package ioutils
