package pack

import (
	"path/filepath"

	"l10n-sync/core/stringtable"
)

// FileSpec names one client string-table file and its root element.
type FileSpec struct {
	// Path is the file's location relative to each table root directory.
	Path string
	// Root is the document's root element name.
	Root string
}

// DefaultManifest returns the string-table files the client ships.
// stringtable_tip.xml is the one file with a different root element.
func DefaultManifest() []FileSpec {
	files := []string{
		"client_strings_bm.xml",
		"client_strings_bmrestrict.xml",
		"client_strings_dic_etc.xml",
		"client_strings_dic_item.xml",
		"client_strings_dic_monster.xml",
		"client_strings_dic_people.xml",
		"client_strings_dic_place.xml",
		"client_strings_etc.xml",
		"client_strings_funcpet.xml",
		"client_strings_gossip.xml",
		"client_strings_item.xml",
		"client_strings_item2.xml",
		"client_strings_level.xml",
		"client_strings_monster.xml",
		"client_strings_msg.xml",
		"client_strings_npc.xml",
		"client_strings_quest.xml",
		"client_strings_skill.xml",
		"client_strings_ui.xml",
		"StringTable_Dialog.xml",
	}

	specs := make([]FileSpec, 0, len(files)+1)
	for _, f := range files {
		specs = append(specs, FileSpec{
			Path: filepath.Join("data", "strings", f),
			Root: stringtable.RootStrings,
		})
	}
	specs = append(specs, FileSpec{
		Path: filepath.Join("data", "strings", "stringtable_tip.xml"),
		Root: stringtable.RootStringTips,
	})
	return specs
}

// AssetDirs returns the reference directories copied verbatim into each
// variant output. Patch-side files under the same paths are overlaid last.
func AssetDirs() []string {
	return []string{
		"textures",
		filepath.Join("data", "ui"),
		filepath.Join("data", "dialogs"),
		filepath.Join("data", "cutscene"),
		filepath.Join("data", "strings", "error"),
	}
}
