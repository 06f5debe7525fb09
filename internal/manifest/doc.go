// Package manifest generates a JSON index of a downloaded album.
//
// The manifest is a small companion file written next to the page images,
// recording where the album came from and which pages were fetched. It makes
// a directory of numbered JPEGs self-describing:
//
//	creator := manifest.NewCreator()
//	content, err := creator.Create(album, pages)
//	os.WriteFile(filepath.Join(album.Dir, manifest.FileName), content, 0644)
package manifest
