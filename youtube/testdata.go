package youtube

// SampleAtomFeed is a sample YouTube Atom feed with two entries.
const SampleAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/">
  <title>YouTube Channel Videos</title>
  <link rel="alternate" href="https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw"/>
  <author>
    <name>Test Uploader</name>
    <uri>https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw</uri>
  </author>
  <entry>
    <id>yt:video:dQw4w9WgXcQ</id>
    <yt:videoId>dQw4w9WgXcQ</yt:videoId>
    <yt:channelId>UCuAXFkgsw1L7xaCfnd5JJOw</yt:channelId>
    <title>Video 1</title>
    <published>2020-01-02T12:00:00+00:00</published>
    <media:group>
      <media:title>Video 1</media:title>
      <media:thumbnail url="https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" width="480" height="360"/>
      <media:description>First video</media:description>
    </media:group>
  </entry>
  <entry>
    <id>yt:video:xQw4w9WgXcZ</id>
    <yt:videoId>xQw4w9WgXcZ</yt:videoId>
    <yt:channelId>UCuAXFkgsw1L7xaCfnd5JJOw</yt:channelId>
    <title>Video 2</title>
    <published>2020-01-01T12:00:00+00:00</published>
    <media:group>
      <media:title>Video 2</media:title>
      <media:thumbnail url="https://i.ytimg.com/vi/xQw4w9WgXcZ/hqdefault.jpg" width="480" height="360"/>
      <media:description>Second video</media:description>
    </media:group>
  </entry>
</feed>`

// SampleEmptyAtomFeed is a feed with no entries.
const SampleEmptyAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:yt="http://www.youtube.com/xml/schemas/2015">
  <title>YouTube Channel Videos</title>
  <author>
    <name>Test Uploader</name>
  </author>
</feed>`

// SampleSearchResponse is a Data API search response with three items in
// relevance order. The third item omits optional snippet fields.
const SampleSearchResponse = `{
  "kind": "youtube#searchListResponse",
  "pageInfo": {"totalResults": 3, "resultsPerPage": 3},
  "items": [
    {
      "kind": "youtube#searchResult",
      "id": {"kind": "youtube#video", "videoId": "vid-1"},
      "snippet": {
        "publishedAt": "2024-03-01T10:00:00Z",
        "channelId": "UCuAXFkgsw1L7xaCfnd5JJOw",
        "title": "Python Tutorial Part 1",
        "description": "Introduction to Python.",
        "channelTitle": "Test Uploader",
        "thumbnails": {
          "default": {"url": "https://i.ytimg.com/vi/vid-1/default.jpg"},
          "high": {"url": "https://i.ytimg.com/vi/vid-1/hqdefault.jpg"}
        }
      }
    },
    {
      "kind": "youtube#searchResult",
      "id": {"kind": "youtube#video", "videoId": "vid-2"},
      "snippet": {
        "publishedAt": "2024-02-01T10:00:00Z",
        "channelId": "UCuAXFkgsw1L7xaCfnd5JJOw",
        "title": "Python Tutorial Part 2",
        "description": "Functions and modules.",
        "channelTitle": "Test Uploader",
        "thumbnails": {
          "default": {"url": "https://i.ytimg.com/vi/vid-2/default.jpg"}
        }
      }
    },
    {
      "kind": "youtube#searchResult",
      "id": {"kind": "youtube#video", "videoId": "vid-3"},
      "snippet": {
        "title": "Python Tutorial Part 3",
        "channelTitle": "Test Uploader"
      }
    }
  ]
}`

// SampleQuotaErrorResponse is the Data API body for an exhausted quota.
const SampleQuotaErrorResponse = `{
  "error": {
    "code": 403,
    "message": "The request cannot be completed because you have exceeded your quota.",
    "errors": [
      {"message": "quota exceeded", "domain": "youtube.quota", "reason": "quotaExceeded"}
    ]
  }
}`

// SampleKeyInvalidResponse is the Data API body for a rejected API key.
const SampleKeyInvalidResponse = `{
  "error": {
    "code": 400,
    "message": "API key not valid. Please pass a valid API key. key=sekret-key-123",
    "errors": [
      {"message": "Bad Request", "domain": "usageLimits", "reason": "keyInvalid"}
    ]
  }
}`
