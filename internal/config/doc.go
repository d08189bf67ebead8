// Package config loads and saves loom.json project configuration.
//
// A loom.json file lives at the project root and configures the rendering
// server, the HTML serializer, and static publishing:
//
//	{
//	  "name": "my-app",
//	  "server": { "host": "localhost", "port": 3000 },
//	  "render": { "pretty": true },
//	  "publish": { "bucket": "my-bucket", "prefix": "site/" }
//	}
//
// All fields are optional; Load fills in defaults and validates the result.
package config
