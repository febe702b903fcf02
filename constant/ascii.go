// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `        ___                 _                
  ___  / (_)___  ____  ____/ /________  ____ 
 / __|/ / / __ \/ __ \/ __  / ___/ __ \/ __ \
/ /__/ / / /_/ / /_/ / /_/ / /  / /_/ / /_/ /
\___/_/_/ .___/\____/\__,_/_/   \____/ .___/ 
       /_/                          /_/      `
