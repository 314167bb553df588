package listing

import (
	"strings"
	"testing"
)

const folderListing = `<html><head><title>Index of /songs/jazz/</title></head>
<body><h1>Index of /songs/jazz/</h1><hr><pre>
<a href="../">../</a>
<a href="/songs/jazz/C.mp3">C.mp3</a>
<a href="/songs/jazz/A.mp3">A.mp3</a>
<a href="/songs/jazz/B.mp3">B.mp3</a>
<a href="/songs/jazz/notes.txt">notes.txt</a>
<a href="/songs/jazz/cover.jpeg">cover.jpeg</a>
</pre><hr></body></html>`

func TestTracks_DocumentOrder(t *testing.T) {
	tracks, err := Tracks(strings.NewReader(folderListing))
	if err != nil {
		t.Fatalf("Tracks() error: %v", err)
	}

	want := []string{"C.mp3", "A.mp3", "B.mp3"}
	if len(tracks) != len(want) {
		t.Fatalf("Tracks() = %v, want %v", tracks, want)
	}
	for i := range want {
		if tracks[i] != want[i] {
			t.Errorf("tracks[%d] = %q, want %q", i, tracks[i], want[i])
		}
	}
}

func TestTracks_DedupPreservesCase(t *testing.T) {
	doc := `<html><body>
<a href="song.mp3">song.mp3</a>
<a href="SONG.MP3">SONG.MP3</a>
<a href="song.mp3">song.mp3</a>
</body></html>`

	tracks, err := Tracks(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Tracks() error: %v", err)
	}

	want := []string{"song.mp3", "SONG.MP3"}
	if len(tracks) != 2 || tracks[0] != want[0] || tracks[1] != want[1] {
		t.Errorf("Tracks() = %v, want %v", tracks, want)
	}
}

func TestTracks_NormalizesHrefs(t *testing.T) {
	doc := `<html><body>
<a href="/songs//jazz/My%20Song.mp3">My Song</a>
<a href="songs\jazz\Other.MP3">Other</a>
</body></html>`

	tracks, err := Tracks(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Tracks() error: %v", err)
	}

	want := []string{"My Song.mp3", "Other.MP3"}
	if len(tracks) != 2 || tracks[0] != want[0] || tracks[1] != want[1] {
		t.Errorf("Tracks() = %v, want %v", tracks, want)
	}
}

func TestTracks_EmptyAndIrrelevantDocuments(t *testing.T) {
	docs := map[string]string{
		"no anchors":     "<html><body><p>nothing here</p></body></html>",
		"no audio":       `<html><body><a href="readme.txt">readme</a></body></html>`,
		"anchor no href": `<html><body><a name="top">x</a></body></html>`,
		"not html":       "just some text",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			tracks, err := Tracks(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("Tracks() error: %v", err)
			}
			if len(tracks) != 0 {
				t.Errorf("Tracks() = %v, want empty", tracks)
			}
		})
	}
}

const rootListing = `<html><body><pre>
<a href="/songs/./">./</a>
<a href="/songs/../">../</a>
<a href="/songs/jazz/">jazz/</a>
<a href="/songs/rock/">rock/</a>
<a href="/songs/jazz/">jazz/</a>
<a href="/static/style.css">style.css</a>
</pre></body></html>`

func TestFolders(t *testing.T) {
	folders, err := Folders(strings.NewReader(rootListing), "songs")
	if err != nil {
		t.Fatalf("Folders() error: %v", err)
	}

	want := []string{"jazz", "rock"}
	if len(folders) != 2 || folders[0] != want[0] || folders[1] != want[1] {
		t.Errorf("Folders() = %v, want %v", folders, want)
	}
}

func TestFolders_MarkerAtEnd(t *testing.T) {
	doc := `<html><body><a href="/songs/">songs</a></body></html>`

	folders, err := Folders(strings.NewReader(doc), "songs")
	if err != nil {
		t.Fatalf("Folders() error: %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("Folders() = %v, want empty", folders)
	}
}
