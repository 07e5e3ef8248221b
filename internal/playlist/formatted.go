package playlist

// readFormattedCSV reads a CSV previously written by this tool
func readFormattedCSV(path string, data table) (*Playlist, error) {
	var tracks []Track
	for _, row := range data.records() {
		if row["artist"] == "" && row["title"] == "" {
			continue
		}
		track := NewTrack(row["artist"], row["title"])
		track.PlayTime = parsePlaytime(row["playtime"])
		tracks = append(tracks, track)
	}

	name := fileStem(path)
	return &Playlist{
		Name:   name,
		Date:   ExtractDateFromName(name),
		File:   path,
		Format: FormatCsv,
		Type:   TypeFormatted,
		Tracks: mergeDuplicates(tracks),
	}, nil
}
