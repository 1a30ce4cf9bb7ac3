// Package classclient implements the classclient code-generation plugin
// for the TypeScript frontend target: the IZetroClient transport interface
// and the fluent ZetroQuery/ZetroMutation builder classes that accumulate
// batched operations and replay their parsed results on fetch().
package classclient
