package media

// Package media parses YouTube URLs into video and playlist identifiers and
// resolves playlist metadata through the ytdlp library. The YouTube slide
// stores the canonical watch URL plus the extracted video ID so the embed
// surface can be rebuilt without re-parsing user input.
