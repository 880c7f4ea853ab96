/*
Package loader reads OpenAPI contract documents from disk.

# Overview

A contract is any JSON object. The loader does not require the document to be
a valid OpenAPI description: sections the differ reads (info, paths, servers,
components) are simply treated as empty when they are absent or have the wrong
shape.

Two failures are fatal for a load and are reported as *oaserrors.LoadError:

  - the file does not exist (matches oaserrors.ErrSpecNotFound)
  - the content is not a JSON object (matches oaserrors.ErrMalformedSpec)

The loader never exits the process; callers decide how to surface the error.

# Validation

WithValidation(true) additionally runs OpenAPI 3 structural validation on the
raw bytes using kin-openapi. Problems are recorded on Loaded.Warnings and never
fail the load.

# Example

	loaded, err := loader.Load("contracts/openapi/public-v1.json",
		loader.WithValidation(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range loaded.Warnings {
		log.Println("warning:", w)
	}
	fmt.Println(loaded.Document.Version())
*/
package loader
