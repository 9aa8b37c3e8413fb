package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// ScanFontDirs reads family names out of the font files found under dirs.
// Missing directories and unparseable files are skipped; fonts a process
// cannot read are simply not reported.
func ScanFontDirs(dirs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var families []string
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}
			for _, name := range fileFamilies(path) {
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				families = append(families, name)
			}
			return nil
		})
	}
	return families, nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}

// fileFamilies extracts family names from a single font file. Both the plain
// and the typographic family are reported since candidates may match either.
func fileFamilies(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var fonts []*sfnt.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		collection, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil
		}
		for i := 0; i < collection.NumFonts(); i++ {
			if f, err := collection.Font(i); err == nil {
				fonts = append(fonts, f)
			}
		}
	} else {
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil
		}
		fonts = append(fonts, f)
	}

	var buf sfnt.Buffer
	var names []string
	for _, f := range fonts {
		for _, id := range []sfnt.NameID{sfnt.NameIDTypographicFamily, sfnt.NameIDFamily} {
			if name, err := f.Name(&buf, id); err == nil && name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
