// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Directory creation
//   - Cleanup of partially-written files
//   - Filename sanitization for cross-platform compatibility
//   - Resizing downloaded page images
//
// # File Operations
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/scans/Recueil de dessins")
//
//	// Remove a truncated file left behind by a failed download
//	err := ioutils.RemoveIfExists("/scans/Recueil de dessins/000042.jpg")
//
// # Filename Sanitization
//
// Album titles come straight from the library's HTML and are used as
// directory names, so invalid characters must be removed:
//
//	safe := ioutils.SanitizeFileName("Estampes / Volume 2") // "Estampes _ Volume 2"
//
// # Image Processing
//
// The ImageService shrinks oversized page scans when the user asks for it:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(ctx, imageData, 2000, 2000)
package ioutils
