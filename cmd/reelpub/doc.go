// Command reelpub publishes the presentation's video catalog, records the
// assigned video IDs and links them into the presentation source.
//
// Typical flow:
//
//	reelpub doctor
//	reelpub publish            # or: reelpub publish --manual
//	reelpub link               # re-run linking from youtube_video_ids.json
package main
