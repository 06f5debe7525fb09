// Package model defines the core data structures used throughout
// the downloader.
//
// # Album
//
// Album represents one digitized album with its scan list and computed
// output directory:
//
//	album := model.NewAlbum("Recueil de dessins", srcURL, iiifPath, names, cfg)
//	fmt.Println(album.Dir)         // Where page images are saved
//	fmt.Println(album.PageCount()) // Number of pages
//
// # Page
//
// Page represents a single page image within an album:
//
//	page := model.NewPage(album, 11, cfg)
//	fmt.Println(page.Path) // e.g. "Recueil de dessins/011.jpg"
//
// Page filenames are zero-padded to the width of the album's page count so
// that lexicographic order matches page order.
package model
